//go:build js && wasm

package game

import (
	"log"
	"regexp"
	"syscall/js"
)

var mobileUserAgent = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// detectCapabilities inspects the user agent and the orientation API
func detectCapabilities() Capabilities {
	nav := js.Global().Get("navigator")
	if !nav.Truthy() || !mobileUserAgent.MatchString(nav.Get("userAgent").String()) {
		return Capabilities{}
	}

	caps := Capabilities{Touch: true}
	if doe := js.Global().Get("DeviceOrientationEvent"); doe.Truthy() {
		caps.Orientation = true
		caps.OrientationNeedsPermission = doe.Get("requestPermission").Type() == js.TypeFunction
	}
	return caps
}

// domModal drives the page's #modal element
type domModal struct {
	modal   js.Value
	text    js.Value
	onClose js.Func
}

// newHostModal binds the page modal, or returns nil when the page has none
func newHostModal(queue *EventQueue) Modal {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return nil
	}
	modal := doc.Call("getElementById", "modal")
	text := doc.Call("getElementById", "modal-text")
	if !modal.Truthy() || !text.Truthy() {
		log.Printf("[Modal] No #modal element on the page, using overlay")
		return nil
	}

	m := &domModal{modal: modal, text: text}
	if btn := doc.Call("querySelector", ".close-btn"); btn.Truthy() {
		m.onClose = js.FuncOf(func(_ js.Value, _ []js.Value) any {
			queue.Push(ModalCloseEvent{})
			return nil
		})
		btn.Call("addEventListener", "click", m.onClose)
	}
	return m
}

func (m *domModal) Open(content string) {
	m.text.Set("textContent", content)
	m.modal.Get("style").Set("display", "block")
}

func (m *domModal) Close() {
	m.modal.Get("style").Set("display", "none")
}

// startOrientation subscribes to deviceorientation, asking for permission on
// the first click where the platform requires it. The returned func releases
// the callbacks.
func startOrientation(queue *EventQueue, caps Capabilities) func() {
	if !caps.Orientation {
		return func() {}
	}
	win := js.Global()
	var funcs []js.Func

	onOrientation := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		e := args[0]
		queue.Push(OrientationEvent{
			Gamma:     jsNumber(e.Get("gamma")),
			Beta:      jsNumber(e.Get("beta")),
			Landscape: win.Get("innerWidth").Float() > win.Get("innerHeight").Float(),
		})
		return nil
	})
	funcs = append(funcs, onOrientation)

	if !caps.OrientationNeedsPermission {
		win.Call("addEventListener", "deviceorientation", onOrientation)
		return releaseAll(funcs)
	}

	onGranted := js.FuncOf(func(_ js.Value, args []js.Value) any {
		granted := len(args) > 0 && args[0].String() == "granted"
		queue.Push(PermissionEvent{Granted: granted})
		if granted {
			win.Call("addEventListener", "deviceorientation", onOrientation)
		} else {
			log.Printf("[Input] Orientation permission denied")
		}
		return nil
	})
	onFailed := js.FuncOf(func(_ js.Value, args []js.Value) any {
		msg := ""
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		log.Printf("[Input] Orientation permission request failed: %s", msg)
		queue.Push(PermissionEvent{Granted: false})
		return nil
	})
	onClick := js.FuncOf(func(_ js.Value, _ []js.Value) any {
		win.Get("DeviceOrientationEvent").Call("requestPermission").
			Call("then", onGranted).
			Call("catch", onFailed)
		return nil
	})
	funcs = append(funcs, onGranted, onFailed, onClick)

	opts := js.Global().Get("Object").New()
	opts.Set("once", true)
	win.Get("document").Get("body").Call("addEventListener", "click", onClick, opts)

	return releaseAll(funcs)
}

// jsNumber reads a nullable numeric field, treating null as zero
func jsNumber(v js.Value) float64 {
	if v.Type() != js.TypeNumber {
		return 0
	}
	return v.Float()
}

func releaseAll(funcs []js.Func) func() {
	return func() {
		for _, f := range funcs {
			f.Release()
		}
	}
}

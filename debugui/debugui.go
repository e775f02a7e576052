// Package debugui provides Dear ImGui windows for inspecting a running tetris session
// and the scheduler that drives it.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/termtris/loop"
)

// ImguiItem holds a Dear ImGui render function that runs once per frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame and updates
// the shared input state. The host must open and close the ImGui frame around
// Scheduler.Once.
type ImguiSystem struct {
	Items      []ImguiItem
	InputState *ImguiInputState
}

// Add appends a render function.
func (i *ImguiSystem) Add(render func()) {
	i.Items = append(i.Items, ImguiItem{Render: render})
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *loop.Frame) {
	if i.InputState != nil {
		io := imgui.CurrentIO()
		i.InputState.WantCaptureMouse = io.WantCaptureMouse()
		i.InputState.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range i.Items {
		if item.Render != nil {
			frame.Defer(item.Render)
		}
	}
}

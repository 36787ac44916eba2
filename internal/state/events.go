package state

// Event is a platform event consumed by Tick. Positions are in logical canvas
// coordinates.
type Event interface{}

// PointerDown is a primary-button press.
type PointerDown struct {
	X, Y float64
}

// PointerMove reports the pointer position for hover tracking.
type PointerMove struct {
	X, Y float64
}

// PointerSide is a side-button press, mapped to history navigation.
type PointerSide struct {
	Forward bool
}

// TextInput is composed text ready for insertion.
type TextInput struct {
	Text string
}

// Key names the keys the dispatcher understands.
type Key int

const (
	KeyNone Key = iota
	KeyBackspace
	KeyReturn
	KeyEscape
	KeyLeft
	KeyRight
	KeyA
	KeyC
	KeyV
	KeyX
	KeyZ
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyBackspace: "backspace",
	KeyReturn:    "return",
	KeyEscape:    "escape",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyA:         "a",
	KeyC:         "c",
	KeyV:         "v",
	KeyX:         "x",
	KeyZ:         "z",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// KeyDown is a key press with its modifiers.
type KeyDown struct {
	Key   Key
	Ctrl  bool
	Shift bool
}

// WindowClose asks the application to quit.
type WindowClose struct{}

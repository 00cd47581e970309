package widget

// Widget is anything owning a node in the retained tree.
type Widget interface {
	Node() *Node
	Name() string
}

// Clickable widgets respond to pointer/ray activation.
type Clickable interface {
	Widget
	Activate()
}

// Editable widgets hold free text.
type Editable interface {
	Widget
	Text() string
	SetText(string)
}

// Rangeable widgets hold a bounded numeric value.
type Rangeable interface {
	Widget
	Value() float64
	SetValue(float64)
}

// Selectable widgets hold one choice out of a fixed set.
type Selectable interface {
	Widget
	Selected() int
	Select(int)
}

// Scrollable widgets window taller content.
type Scrollable interface {
	Widget
	ScrollBy(lines int)
	Offset() int
}

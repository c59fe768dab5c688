package ds1302

// Direction of a Line.
type Direction uint8

const (
	Output Direction = iota
	Input
)

// Line is one of the three wires of the bus. Implementations should be comparable, typically a pointer or a pin
// number, so that Configure can tell when the same line is passed twice.
type Line interface {
	SetDirection(dir Direction) error
	Set(high bool) error
	Get() bool
}

// Delayer busy-waits. Implementations must not return early.
type Delayer interface {
	DelayMicroseconds(us uint32)
}

// Guard keeps a transfer from being interrupted. Enter and Exit are always
// paired and never nested.
type Guard interface {
	Enter()
	Exit()
}

// transferGuard is shared by every Device that does not bring its own Guard.
var transferGuard criticalSection

type logger interface {
	Println(string) error
}

// Log receives a line for state changes of the chip when set. It is never
// called while a transfer is in progress.
var Log logger

func l(msg string) {
	if Log != nil {
		Log.Println(msg)
	}
}

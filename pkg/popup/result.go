package popup

// Result is the outcome of a popup. Exactly one of IsConfirmed, IsDenied and
// IsDismissed is true for a closed popup.
type Result struct {
	IsConfirmed bool          `json:"isConfirmed" yaml:"isConfirmed"`
	IsDenied    bool          `json:"isDenied" yaml:"isDenied"`
	IsDismissed bool          `json:"isDismissed" yaml:"isDismissed"`
	Value       any           `json:"value,omitempty" yaml:"value,omitempty"`
	Dismiss     DismissReason `json:"dismiss,omitempty" yaml:"dismiss,omitempty"`
}

// Confirmed returns a confirm result carrying v.
func Confirmed(v any) Result {
	return Result{IsConfirmed: true, Value: v}
}

// Denied returns a deny result carrying v.
func Denied(v any) Result {
	return Result{IsDenied: true, Value: v}
}

// Dismissed returns a dismiss result for reason.
func Dismissed(reason DismissReason) Result {
	return Result{IsDismissed: true, Dismiss: reason}
}

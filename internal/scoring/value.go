package scoring

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Value is a raw answer: a numeric rating for likert questions or the
// chosen option text for choice questions.
type Value struct {
	rating  int
	text    string
	numeric bool
}

// Rating returns a numeric answer value.
func Rating(n int) Value {
	return Value{rating: n, numeric: true}
}

// Choice returns a textual answer value.
func Choice(option string) Value {
	return Value{text: option}
}

// IsRating reports whether v was constructed with Rating.
func (v Value) IsRating() bool { return v.numeric }

// Int returns the rating and true for numeric values.
func (v Value) Int() (int, bool) {
	return v.rating, v.numeric
}

// Text returns the option text for textual values.
func (v Value) Text() string { return v.text }

func (v Value) String() string {
	if v.numeric {
		return strconv.Itoa(v.rating)
	}
	return v.text
}

// MarshalJSON encodes ratings as numbers and choices as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.rating)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (v *Value) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Rating(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("answer value must be a number or a string: %s", data)
	}
	*v = Choice(s)
	return nil
}

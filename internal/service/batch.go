package service

import "fmt"

type ItemError struct {
	ID  int64
	Err error
}

func (e ItemError) Error() string {
	return fmt.Sprintf("#%d: %v", e.ID, e.Err)
}

// BatchResult reports a batch where each item commits on its own.
// Succeeded counts items without error, Changed those that modified a row.
type BatchResult struct {
	Succeeded int
	Changed   int
	Errors    []ItemError
}

func (b *BatchResult) record(id int64, changed bool, err error) {
	if err != nil {
		b.Errors = append(b.Errors, ItemError{ID: id, Err: err})
		return
	}
	b.Succeeded++
	if changed {
		b.Changed++
	}
}

func (b BatchResult) Failed() int {
	return len(b.Errors)
}

func (b BatchResult) Messages() []string {
	msgs := make([]string, 0, len(b.Errors))
	for _, e := range b.Errors {
		msgs = append(msgs, e.Error())
	}
	return msgs
}

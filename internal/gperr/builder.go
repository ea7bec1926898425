package gperr

import (
	"strings"
	"sync"
)

type Builder struct {
	*builder
}

type builder struct {
	about string
	errs  []error
	sync.Mutex
}

func NewBuilder(about ...string) Builder {
	if len(about) == 0 {
		return Builder{&builder{}}
	}
	return Builder{&builder{about: about[0]}}
}

func (b Builder) About() string {
	return b.about
}

// Add adds an error to the builder.
//
// adding nil is a no-op,
// you may safely pass expressions returning error to it.
func (b Builder) Add(err error) Builder {
	if err != nil {
		b.Lock()
		b.errs = append(b.errs, err)
		b.Unlock()
	}
	return b
}

func (b Builder) Addf(format string, args ...any) Builder {
	return b.Add(Errorf(format, args...))
}

func (b Builder) AddRange(errs ...error) Builder {
	b.Lock()
	defer b.Unlock()
	for _, err := range errs {
		if err != nil {
			b.errs = append(b.errs, err)
		}
	}
	return b
}

// Error builds an Error from the errors collected so far.
//
// If no error was added, it returns nil.
// A single error with a single-word about is subjected,
// otherwise the about line becomes the root of a nested error.
func (b Builder) Error() Error {
	if !b.HasError() {
		return nil
	}
	if b.about == "" {
		if len(b.errs) == 1 {
			return wrap(b.errs[0])
		}
		return &nestedError{Extras: b.errs}
	}
	if len(b.errs) == 1 && !strings.ContainsRune(b.about, ' ') {
		return wrap(b.errs[0]).Subject(b.about)
	}
	return &nestedError{Err: newError(b.about), Extras: b.errs}
}

func (b Builder) String() string {
	if err := b.Error(); err != nil {
		return err.Error()
	}
	return ""
}

func (b Builder) HasError() bool {
	return len(b.errs) > 0
}

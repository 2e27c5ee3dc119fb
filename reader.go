// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package reader

// Reader represents a computation which needs an environment, E,
// before it can produce a value, A.
//
// Implementations are expected to be pure. Running the same Reader
// with the same environment should always produce the same value.
type Reader[E, A any] interface {
	Run(E) A
}

// Func is a functional implementation of the [Reader] interface.
type Func[E, A any] func(E) A

// Run implements the [Reader] interface.
func (f Func[E, A]) Run(env E) A {
	return f(env)
}

// New wraps the given func as a [Reader]. The func is not called,
// or checked, until the returned [Reader] is ran.
func New[E, A any](f func(E) A) Reader[E, A] {
	return Func[E, A](f)
}

// Of returns a [Reader] which always produces the given value
// regardless of the environment it is ran with.
//
// If a is itself a [Reader] it is returned as is when ran. Use [Join]
// to flatten it.
func Of[E, A any](a A) Reader[E, A] {
	return Func[E, A](func(_ E) A {
		return a
	})
}

// Ask returns a [Reader] which produces the environment it is ran with.
func Ask[E any]() Reader[E, E] {
	return Func[E, E](func(env E) E {
		return env
	})
}

// Chain returns a [Reader] which runs r and then runs the [Reader]
// returned by f. Both are ran with the same environment.
func Chain[E, A, B any](r Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return Func[E, B](func(env E) B {
		return f(r.Run(env)).Run(env)
	})
}

// Map returns a [Reader] whose value is the value of r transformed by f.
func Map[E, A, B any](r Reader[E, A], f func(A) B) Reader[E, B] {
	return Chain(r, func(a A) Reader[E, B] {
		return Of[E](f(a))
	})
}

// Ap returns a [Reader] which applies the func produced by rf to the
// value produced by ra.
func Ap[E, A, B any](rf Reader[E, func(A) B], ra Reader[E, A]) Reader[E, B] {
	return Chain(rf, func(f func(A) B) Reader[E, B] {
		return Map(ra, f)
	})
}

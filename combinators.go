// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package reader

// Asks returns a [Reader] which produces f applied to the environment.
// It's most commonly used to select a single field from a config struct.
func Asks[E, A any](f func(E) A) Reader[E, A] {
	return Map(Ask[E](), f)
}

// Local returns a [Reader] which runs r with the environment modified by f.
// Only r sees the modified environment.
func Local[E, A any](r Reader[E, A], f func(E) E) Reader[E, A] {
	return Func[E, A](func(env E) A {
		return r.Run(f(env))
	})
}

// Join flattens a [Reader] which produces another [Reader].
func Join[E, A any](rr Reader[E, Reader[E, A]]) Reader[E, A] {
	return Chain(rr, func(r Reader[E, A]) Reader[E, A] {
		return r
	})
}

// Then runs r and discards its value before running next.
func Then[E, A, B any](r Reader[E, A], next Reader[E, B]) Reader[E, B] {
	return Chain(r, func(_ A) Reader[E, B] {
		return next
	})
}

// Sequence returns a [Reader] which runs each of the given readers,
// in order, and collects their values.
func Sequence[E, A any](rs ...Reader[E, A]) Reader[E, []A] {
	rs = append([]Reader[E, A](nil), rs...)

	return Func[E, []A](func(env E) []A {
		as := make([]A, 0, len(rs))
		for _, r := range rs {
			as = append(as, r.Run(env))
		}
		return as
	})
}

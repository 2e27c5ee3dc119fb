// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package reader provides a generic, composable Reader: a deferred computation
// which produces a value of type A once it is given an environment of type E.
//
// A [Reader] never runs until [Reader.Run] is called, so environment dependent
// logic can be assembled from small pieces without threading the environment
// through every function call by hand.
//
// # Construction
//
//   - [Of]: Lift a plain value, ignoring the environment
//   - [Ask]: Access the environment itself
//   - [New] and [Func]: Wrap a func(E) A directly
//
// # Functional Composition
//
//   - [Chain]: Feed the result of one Reader into a func which picks the next Reader
//   - [Map]: Transform the result of a Reader with a pure function
//   - [Ap]: Apply a Reader of a function to a Reader of its argument
//
// [Map] and [Ap] are both derived from [Chain]. The environment given to
// [Reader.Run] is passed, unchanged, to every Reader in the composition.
//
// # Basic Usage
//
//	type Config struct {
//	    Greeting string
//	}
//
//	greet := reader.Map(
//	    reader.Asks(func(cfg Config) string { return cfg.Greeting }),
//	    func(s string) string { return s + ", world" },
//	)
//
//	fmt.Println(greet.Run(Config{Greeting: "Hello"}))
//
// # Failures
//
// Readers do not validate or recover anything. If a user supplied function
// panics, the panic surfaces unchanged from [Reader.Run].
package reader

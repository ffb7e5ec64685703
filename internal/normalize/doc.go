// Package normalize coerces loosely shaped pitch content into the uniform
// shapes the renderers consume.
//
// Every function here is total: malformed input degrades to an empty or
// neutral result and never panics. The *OK variants additionally report
// whether the input shape was recognized so callers can log the fallback.
package normalize

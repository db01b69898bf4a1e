// Package guard gates incoming navigation requests on the carried
// credential alone. It runs before any page code and never touches the
// durable credential store or in-memory session state.
package guard

import "strings"

// Decision is the outcome of the gate for one request. The zero value
// allows the request through unchanged.
type Decision struct {
	RedirectTo string
}

// Allowed reports whether the request proceeds to its handler.
func (d Decision) Allowed() bool {
	return d.RedirectTo == ""
}

func allow() Decision {
	return Decision{}
}

func redirectTo(path string) Decision {
	return Decision{RedirectTo: path}
}

// Decide maps a request path and carried token to a decision. verify
// must fail closed: expired, malformed and forged tokens all report
// false. Rules are evaluated in priority order, first match wins.
func Decide(path, token string, verify func(string) bool) Decision {
	switch {
	case path == "/signin" || path == "/signup":
		return signinPolicy(token, verify)
	case strings.HasPrefix(path, "/products") || path == "/categories":
		return protectedPolicy(token, verify)
	case path == "/":
		return redirectTo("/categories")
	case path == "/logout":
		if token == "" {
			return redirectTo("/")
		}
		return allow()
	}
	return allow()
}

// signinPolicy fails open: an already signed-in visitor is sent to the
// product list, while a token that does not verify leaves the request
// untouched instead of bouncing it.
func signinPolicy(token string, verify func(string) bool) Decision {
	if token != "" && verify(token) {
		return redirectTo("/products")
	}
	return allow()
}

// protectedPolicy fails closed. A missing token goes to /signin; a token
// that does not verify goes to /products, not /signin. The asymmetry is
// deliberate and matches the shipped behavior; see DESIGN.md.
func protectedPolicy(token string, verify func(string) bool) Decision {
	if token == "" {
		return redirectTo("/signin")
	}
	if verify(token) {
		return allow()
	}
	return redirectTo("/products")
}

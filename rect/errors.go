package rect

import "errors"

// ErrSyntax signals a malformed textual rectangle.
var ErrSyntax = errors.New("rect: malformed rectangle")

package crack

import "errors"

// ErrInvalidSearchSpace indicates an empty or unusable search space:
// no rotors or reflectors to choose from, fewer than three rotors in
// the pool, or pool entries that do not parse.  It is detected before
// any work is dispatched.
var ErrInvalidSearchSpace = errors.New("invalid search space")

package writer

import "errors"

// ErrProtocol marks events that are invalid for the writer's channel role or
// current adaptation state. It signals a defect in the engine configuration
// rather than a transient condition; the writer that returned it is left
// unusable. Callers match it with errors.Is.
var ErrProtocol = errors.New("writer protocol misuse")

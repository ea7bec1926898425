package netwatch

type Status uint8

const (
	StatusUnknown Status = 0
	StatusConnected      = (1 << iota)
	StatusDisconnected
)

func (s Status) String() string {
	switch s {
	case StatusConnected:
		return "connected"
	case StatusDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s Status) Good() bool {
	return s == StatusConnected
}

func (s Status) Bad() bool {
	return s != StatusConnected
}

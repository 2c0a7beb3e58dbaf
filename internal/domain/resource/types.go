package resource

import "errors"

var (
	ErrInvalidType   = errors.New("invalid resource type")
	ErrInvalidStatus = errors.New("invalid resource status")
)

type Type string

const (
	TypeCourt     Type = "court"
	TypeEquipment Type = "equipment"
	TypeRoom      Type = "room"
	TypeOther     Type = "other"
)

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeCourt, TypeEquipment, TypeRoom, TypeOther:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusAvailable   Status = "available"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
	StatusOutOfOrder  Status = "out_of_order"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusMaintenance, StatusOutOfOrder:
		return true
	default:
		return false
	}
}

package billing

import (
	"errors"
	"time"
)

var (
	ErrInvalidCharge = errors.New("invalid charge")
	ErrLineNotFound  = errors.New("charge line not found")
	ErrImmutableLine = errors.New("charge line is immutable")
)

// Ledger is the append-only sequence of charge lines owned by one
// reservation. Line seq numbers are monotonic for the reservation's lifetime
// and are never reused, so a retracted line's seq stays retired.
type Ledger struct {
	lines   []ChargeLine
	nextSeq int64
}

func NewLedger() *Ledger {
	return &Ledger{nextSeq: 1}
}

func ReconstructLedger(lines []ChargeLine, nextSeq int64) *Ledger {
	return &Ledger{lines: append([]ChargeLine(nil), lines...), nextSeq: nextSeq}
}

func (lg *Ledger) Append(in ChargeInput, at time.Time) (ChargeLine, error) {
	if err := in.Validate(); err != nil {
		return ChargeLine{}, err
	}

	line := ChargeLine{
		Seq:         lg.nextSeq,
		Category:    in.Category,
		Description: in.Description,
		UnitPrice:   in.UnitPrice,
		Qty:         in.Qty,
		AddedAt:     at,
		AddedBy:     in.AddedBy,
	}
	lg.nextSeq++
	lg.lines = append(lg.lines, line)
	return line, nil
}

// Retract removes an unsettled line. RoomCharge lines are never retracted
// individually; they are only superseded by AdHoc correction lines.
func (lg *Ledger) Retract(seq int64) error {
	for i, line := range lg.lines {
		if line.Seq != seq {
			continue
		}
		if line.Category == CategoryRoomCharge {
			return ErrImmutableLine
		}
		lg.lines = append(lg.lines[:i], lg.lines[i+1:]...)
		return nil
	}
	return ErrLineNotFound
}

// Total recomputes the sum over current lines on every call. Nothing is
// cached, so the total can never diverge from the persisted sequence.
func (lg *Ledger) Total() Money {
	var total Money
	for _, line := range lg.lines {
		total = total.Add(line.Amount())
	}
	return total
}

func (lg *Ledger) Len() int {
	return len(lg.lines)
}

// Lines returns a copy; callers cannot reach the owned backing slice.
func (lg *Ledger) Lines() []ChargeLine {
	return append([]ChargeLine(nil), lg.lines...)
}

func (lg *Ledger) Find(seq int64) (ChargeLine, bool) {
	for _, line := range lg.lines {
		if line.Seq == seq {
			return line, true
		}
	}
	return ChargeLine{}, false
}

func (lg *Ledger) Clone() *Ledger {
	return ReconstructLedger(lg.lines, lg.nextSeq)
}

package txbuilder

// ChequeCellSince is the fixed relative since every input of a cheque
// withdraw transaction must carry: relative (bit 63 set), epoch-number
// metric, value 6 epochs — the protocol's mandatory sender waiting
// period before a cheque can be reclaimed.
const ChequeCellSince uint64 = 0xa000000000000006

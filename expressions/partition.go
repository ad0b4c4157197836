package expressions

// Partition is a pre-declared partition bound attached to list and range
// transforms.
type Partition interface {
	isPartition()
}

// ListPartition and RangePartition are placeholder variants reserved for
// future extension; they carry no data or behavior yet.
type ListPartition struct{}

func (ListPartition) isPartition() {}

type RangePartition struct{}

func (RangePartition) isPartition() {}

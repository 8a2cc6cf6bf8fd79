package constant

// Operation names a page operation, shared by the api routes and queue jobs.
type Operation string

const (
	Operation2In1         Operation = "2in1"
	OperationMerge        Operation = "merge"
	OperationDeletePages  Operation = "delpages"
	OperationSplit        Operation = "split"
	OperationSplitByPages Operation = "split_by_pages"
)

func (o Operation) Valid() bool {
	switch o {
	case Operation2In1, OperationMerge, OperationDeletePages, OperationSplit, OperationSplitByPages:
		return true
	}
	return false
}

func Operations() []Operation {
	return []Operation{Operation2In1, OperationMerge, OperationDeletePages, OperationSplit, OperationSplitByPages}
}

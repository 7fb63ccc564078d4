package executor_factory

import (
	"context"

	"github.com/naturetrails/trails-backend/repositories"
)

// TransactionReturnValue wraps a transaction whose callback produces a value:
// commit and return it when the callback returns nil, rollback otherwise.
func TransactionReturnValue[ReturnType any](
	ctx context.Context,
	factory ExecutorFactory,
	fn func(tx repositories.Transaction) (ReturnType, error),
) (ReturnType, error) {
	var value ReturnType
	transactionErr := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, transactionErr
}

package stor

import (
	"github.com/draftleague/marketd/pkg/dldb/config"
	"gorm.io/gorm"
)

func WithTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error

	retryCount := config.GetTxRetry()

	if retryCount < 3 {
		retryCount = 3
	}

	for i := 0; i < retryCount; i++ {
		err = db.Transaction(fn)
		if err == nil {
			break
		}

		// Business-rule failures are final; retrying them would just
		// re-run the same checks against the same state.
		if _, ok := AsStorError(err); ok {
			break
		}
	}

	return err
}

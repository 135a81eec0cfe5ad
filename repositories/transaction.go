package repositories

import "gorm.io/gorm"

// GormTransaction is the callback function used during db.Transaction in Gorm.
type GormTransaction func(tx *gorm.DB) error

// Transactor runs multi step writes in one database transaction. Repositories join the
// transaction through their WithTx method.
type Transactor interface {
	Transaction(fn GormTransaction) error
}

type transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) Transactor {
	return &transactor{db: db}
}

func (t *transactor) Transaction(fn GormTransaction) error {
	return t.db.Transaction(fn)
}

package store

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Store interface {
	Series() Series
	InitialMigration() error
	Close() error
}

type DataStore struct {
	series Series
	db     *gorm.DB
	log    *zap.SugaredLogger
}

func NewStore(db *gorm.DB, log *zap.SugaredLogger) Store {
	return &DataStore{
		series: NewSeriesStore(db),
		db:     db,
		log:    log,
	}
}

func (s *DataStore) Series() Series {
	return s.series
}

func (s *DataStore) InitialMigration() error {
	return s.Series().InitialMigration()
}

func (s *DataStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

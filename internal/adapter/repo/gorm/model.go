package gormrepo

import "time"

type turnRecordRow struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	RunID      string    `gorm:"column:run_id"`
	GameID     string    `gorm:"column:game_id"`
	Kind       string    `gorm:"column:kind"`
	Ref        string    `gorm:"column:ref"`
	Label      string    `gorm:"column:label"`
	Success    bool      `gorm:"column:success"`
	Lives      int       `gorm:"column:lives"`
	Gold       int       `gorm:"column:gold"`
	Turn       int       `gorm:"column:turn"`
	Score      int       `gorm:"column:score"`
	Level      int       `gorm:"column:level"`
	OccurredAt time.Time `gorm:"column:occurred_at"`
}

func (turnRecordRow) TableName() string {
	return "turn_records"
}

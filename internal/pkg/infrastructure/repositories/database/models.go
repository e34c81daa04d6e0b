package database

import (
	"time"
)

type Greenhouse struct {
	BoxNo     string `gorm:"primaryKey"`
	Name      string
	CameraID  string
	CameraURL string

	SensorReadings []SensorReading `gorm:"foreignKey:BoxNo;references:BoxNo;constraint:OnDelete:CASCADE"`
}

type SensorReading struct {
	SensorID  string `gorm:"primaryKey"`
	BoxNo     string `gorm:"index;not null"`
	Name      string
	Unit      string
	Value     float64
	Timestamp time.Time `gorm:"index"`
	Type      string
}

type SoilData struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	DeviceID    string `gorm:"index;not null"`
	Temperature float64
	Humidity    float64
	EC          float64 `gorm:"column:ec"`
	PH          float64 `gorm:"column:ph"`
	N           float64 `gorm:"column:n"`
	P           float64 `gorm:"column:p"`
	K           float64 `gorm:"column:k"`
	Timestamp   time.Time
}

func (SoilData) TableName() string {
	return "soil_data"
}

type CameraDevice struct {
	DeviceSerial string `gorm:"primaryKey"`
	ChannelNo    int
	AccessToken  string
	Quality      int
}

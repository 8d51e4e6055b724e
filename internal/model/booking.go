package model

import "time"

// Booking statuses. Only Confirmed rows are ever written by the coordinator;
// Cancelled exists for rows edited out-of-band in the backing table.
const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Booking represents one appointment row.
// Column order mirrors the sheet the salon staff can edit directly:
// Booking ID | Customer Name | Date | Time | Service | Status.
type Booking struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	CustomerName string `gorm:"size:256;not null" json:"customerName"`
	Date         string `gorm:"size:10;not null;index:idx_bookings_date_time" json:"date"`
	Time         string `gorm:"size:5;not null;index:idx_bookings_date_time" json:"time"`
	Service      string `gorm:"size:128;not null" json:"service"`
	Status       string `gorm:"size:16;not null" json:"status"`
	CreatedAt    time.Time `json:"-"`
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductType string

const (
	ProductSingleClass           ProductType = "single_class"
	ProductClassPackage          ProductType = "class_package"
	ProductIntroductoryClass     ProductType = "introductory_class"
	ProductGroupClass            ProductType = "group_class"
	ProductOpenStudioSub         ProductType = "open_studio_subscription"
	ProductCouplesExperience     ProductType = "couples_experience"
	ProductCustomGroupExperience ProductType = "custom_group_experience"
)

type Technique string

const (
	TechniquePottersWheel Technique = "potters_wheel"
	TechniqueHandModeling Technique = "hand_modeling"
	TechniquePainting     Technique = "painting"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentGiftcard PaymentMethod = "giftcard"
)

// TimeSlot is a single date+time+instructor unit of class attendance,
// stored inside the booking's slots jsonb column.
type TimeSlot struct {
	Date         string    `json:"date"` // YYYY-MM-DD
	Time         string    `json:"time"` // HH:MM
	InstructorID uuid.UUID `json:"instructorId"`
	Technique    Technique `json:"technique,omitempty"`
	NoRefund     bool      `json:"noRefund,omitempty"`
}

type PaymentDetail struct {
	Amount         float64       `json:"amount"`
	Method         PaymentMethod `json:"method"`
	ReceivedAt     time.Time     `json:"receivedAt"`
	GiftcardID     string        `json:"giftcardId,omitempty"`
	GiftcardAmount float64       `json:"giftcardAmount,omitempty"`
}

type GroupAssignment struct {
	ParticipantNumber int       `json:"participantNumber"`
	Technique         Technique `json:"technique"`
	SelectedPieceID   string    `json:"selectedPieceId,omitempty"`
}

// ProductSnapshot is the immutable copy of the product taken at booking
// time. Catalog edits must never change the terms of an existing booking.
type ProductSnapshot struct {
	ProductID       uuid.UUID   `json:"productId"`
	Name            string      `json:"name"`
	Type            ProductType `json:"type"`
	Technique       Technique   `json:"technique,omitempty"`
	Price           float64     `json:"price"`
	DurationMinutes int         `json:"durationMinutes"`
	Sessions        int         `json:"sessions"`
}

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SlotList []TimeSlot

func (s SlotList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SlotList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &s)
}

type PaymentList []PaymentDetail

func (p PaymentList) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PaymentList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &p)
}

type AssignmentList []GroupAssignment

func (a AssignmentList) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AssignmentList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}

func (p ProductSnapshot) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *ProductSnapshot) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &p)
}

func (u UserInfo) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *UserInfo) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &u)
}

type Booking struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key"`
	StudioID        uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;index"`

	BookingCode string      `gorm:"uniqueIndex;not null"` // C-ALMA-XXXXXXXX
	CustomerID  *uuid.UUID  `gorm:"type:uuid;index"`
	ProductID   uuid.UUID   `gorm:"type:uuid;index;not null"`
	ProductType ProductType `gorm:"type:varchar(40);not null"`

	Product          ProductSnapshot `gorm:"type:jsonb;default:'{}'"`
	UserInfo         UserInfo        `gorm:"type:jsonb;default:'{}'"`
	Slots            SlotList        `gorm:"type:jsonb;default:'[]'"`
	PaymentDetails   PaymentList     `gorm:"type:jsonb;default:'[]'"`
	GroupAssignments AssignmentList  `gorm:"type:jsonb;default:'[]'"`

	Price        float64 `gorm:"type:decimal(10,2);not null"`
	IsPaid       bool    `gorm:"default:false"`
	Participants int     `gorm:"default:1"`

	BookingDate      time.Time
	ExpiresAt        *time.Time
	ClientNote       string `gorm:"type:text"`
	AcceptedNoRefund bool   `gorm:"default:false"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

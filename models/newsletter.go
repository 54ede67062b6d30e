package models

import "time"

type NewsletterSubscriber struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"type:VARCHAR(255);uniqueIndex;not null" json:"email"`
	SubscribedAt time.Time `gorm:"autoCreateTime;index" json:"subscribed_at"`
}

package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Instructor struct {
	ID         primitive.ObjectID
	Name       string
	Image      string
	Email      string
	ClassCount int
}

type InstructorRepository interface {
	GetAll(ctx context.Context) ([]Instructor, error)
}

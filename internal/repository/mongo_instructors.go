package repository

import (
	"context"

	"github.com/campventure/summer-camp-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoInstructorRepository struct {
	coll *mongo.Collection
}

func NewMongoInstructorRepository(db *mongo.Database) *MongoInstructorRepository {
	return &MongoInstructorRepository{
		coll: db.Collection(instructorsCollection),
	}
}

type instructorDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Image      string             `bson:"image,omitempty"`
	Email      string             `bson:"email"`
	ClassCount int                `bson:"class_count"`
}

func (r *MongoInstructorRepository) GetAll(ctx context.Context) ([]domain.Instructor, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []instructorDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	instructors := make([]domain.Instructor, len(docs))
	for i, doc := range docs {
		instructors[i] = domain.Instructor{
			ID:         doc.ID,
			Name:       doc.Name,
			Image:      doc.Image,
			Email:      doc.Email,
			ClassCount: doc.ClassCount,
		}
	}

	return instructors, nil
}

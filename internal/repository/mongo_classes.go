package repository

import (
	"context"
	"time"

	"github.com/campventure/summer-camp-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoClassRepository struct {
	coll *mongo.Collection
}

func NewMongoClassRepository(db *mongo.Database) *MongoClassRepository {
	return &MongoClassRepository{
		coll: db.Collection(classesCollection),
	}
}

type classDocument struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty"`
	Name           string               `bson:"name"`
	Image          string               `bson:"image,omitempty"`
	Instructor     string               `bson:"instructor"`
	Email          string               `bson:"email"`
	Price          primitive.Decimal128 `bson:"price"`
	AvailableSeats int                  `bson:"available_seats"`
	CreatedAt      time.Time            `bson:"created_at"`
}

func (doc classDocument) toDomain() domain.Class {
	return domain.Class{
		ID:             doc.ID,
		Name:           doc.Name,
		Image:          doc.Image,
		Instructor:     doc.Instructor,
		Email:          doc.Email,
		Price:          fromDecimal128(doc.Price),
		AvailableSeats: doc.AvailableSeats,
		CreatedAt:      doc.CreatedAt,
	}
}

func (r *MongoClassRepository) GetAll(ctx context.Context, filters domain.ClassFilters) ([]domain.Class, error) {
	query := bson.M{}

	if filters.MaxPrice != nil {
		query["price"] = bson.M{"$lt": toDecimal128(*filters.MaxPrice)}
	}
	if filters.Email != "" {
		query["email"] = filters.Email
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []classDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	classes := make([]domain.Class, len(docs))
	for i, doc := range docs {
		classes[i] = doc.toDomain()
	}

	return classes, nil
}

func (r *MongoClassRepository) Create(ctx context.Context, class *domain.Class) error {
	doc := classDocument{
		Name:           class.Name,
		Image:          class.Image,
		Instructor:     class.Instructor,
		Email:          class.Email,
		Price:          toDecimal128(class.Price),
		AvailableSeats: class.AvailableSeats,
		CreatedAt:      time.Now().UTC(),
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	class.ID = result.InsertedID.(primitive.ObjectID)
	class.CreatedAt = doc.CreatedAt

	return nil
}

func (r *MongoClassRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

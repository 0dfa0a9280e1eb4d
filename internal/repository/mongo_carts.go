package repository

import (
	"context"
	"time"

	"github.com/campventure/summer-camp-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoCartRepository struct {
	coll *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{
		coll: db.Collection(cartCollection),
	}
}

type cartItemDocument struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	Email     string               `bson:"email"`
	ClassID   string               `bson:"class_id"`
	ClassName string               `bson:"class_name,omitempty"`
	Price     primitive.Decimal128 `bson:"price"`
	CreatedAt time.Time            `bson:"created_at"`
}

func (doc cartItemDocument) toDomain() domain.CartItem {
	return domain.CartItem{
		ID:        doc.ID,
		Email:     doc.Email,
		ClassID:   doc.ClassID,
		ClassName: doc.ClassName,
		Price:     fromDecimal128(doc.Price),
		CreatedAt: doc.CreatedAt,
	}
}

func (r *MongoCartRepository) GetByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []cartItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, len(docs))
	for i, doc := range docs {
		items[i] = doc.toDomain()
	}

	return items, nil
}

func (r *MongoCartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	doc := cartItemDocument{
		Email:     item.Email,
		ClassID:   item.ClassID,
		ClassName: item.ClassName,
		Price:     toDecimal128(item.Price),
		CreatedAt: time.Now().UTC(),
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	item.ID = result.InsertedID.(primitive.ObjectID)
	item.CreatedAt = doc.CreatedAt

	return nil
}

func (r *MongoCartRepository) Delete(ctx context.Context, id string) error {
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

// DeleteByEmail empties a user's cart. Deleting an already empty cart
// is not an error; webhook redelivery depends on that.
func (r *MongoCartRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

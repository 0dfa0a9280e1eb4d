package repository

import (
	"context"
	"time"

	"github.com/campventure/summer-camp-server/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPaymentRepository struct {
	coll *mongo.Collection
}

func NewMongoPaymentRepository(db *mongo.Database) *MongoPaymentRepository {
	return &MongoPaymentRepository{
		coll: db.Collection(paymentsCollection),
	}
}

type paymentDocument struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty"`
	Email         string               `bson:"email"`
	Name          string               `bson:"name"`
	TotalPrice    primitive.Decimal128 `bson:"total_price"`
	TransactionID string               `bson:"transaction_id"`
	CartItems     []string             `bson:"cart_items"`
	Status        string               `bson:"status"`
	PaymentDate   *time.Time           `bson:"payment_date"`
	CreatedAt     time.Time            `bson:"created_at"`
}

func (doc paymentDocument) toDomain() domain.Payment {
	return domain.Payment{
		ID:            doc.ID,
		Email:         doc.Email,
		Name:          doc.Name,
		TotalPrice:    fromDecimal128(doc.TotalPrice),
		TransactionID: doc.TransactionID,
		CartItems:     doc.CartItems,
		Status:        domain.PaymentStatus(doc.Status),
		PaymentDate:   doc.PaymentDate,
		CreatedAt:     doc.CreatedAt,
	}
}

func (r *MongoPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	doc := paymentDocument{
		Email:         payment.Email,
		Name:          payment.Name,
		TotalPrice:    toDecimal128(payment.TotalPrice),
		TransactionID: payment.TransactionID,
		CartItems:     payment.CartItems,
		Status:        string(payment.Status),
		PaymentDate:   nil,
		CreatedAt:     time.Now().UTC(),
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}

	payment.ID = result.InsertedID.(primitive.ObjectID)
	payment.CreatedAt = doc.CreatedAt

	return nil
}

// MarkCompleted filters on the transaction id alone, never on the
// current status, so a redelivered webhook still matches and stays a
// no-op in effect. The pipeline keeps an already set payment date.
func (r *MongoPaymentRepository) MarkCompleted(ctx context.Context, transactionID string, paymentDate time.Time) error {
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"status":       string(domain.PaymentStatusCompleted),
			"payment_date": bson.M{"$ifNull": bson.A{"$payment_date", paymentDate.UTC()}},
		}}},
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"transaction_id": transactionID}, update)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (r *MongoPaymentRepository) GetByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *MongoPaymentRepository) GetAll(ctx context.Context) ([]domain.Payment, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoPaymentRepository) find(ctx context.Context, query bson.M) ([]domain.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []paymentDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, len(docs))
	for i, doc := range docs {
		payments[i] = doc.toDomain()
	}

	return payments, nil
}

package subscriptions

import (
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubscriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewSubscriptionMongoRepository(db *mongo.Client, dbName string) contracts.SubscriptionRepository {
	return &SubscriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSubscriptions),
	}
}

func (r *SubscriptionMongoRepository) CreateSubscription(ctx context.Context, subscription *models.Subscription) (string, error) {
	now := time.Now()
	subscription.CreatedAt = now
	subscription.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, subscription)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SubscriptionMongoRepository) FindByID(ctx context.Context, subscriptionID string) (*models.Subscription, error) {
	objectID, err := primitive.ObjectIDFromHex(subscriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var subscription models.Subscription
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&subscription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &subscription, nil
}

func (r *SubscriptionMongoRepository) FindByCheckoutSessionID(ctx context.Context, checkoutSessionID string) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.Collection.FindOne(ctx, bson.M{"checkoutSessionId": checkoutSessionID}).Decode(&subscription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &subscription, nil
}

func (r *SubscriptionMongoRepository) FindActiveByDoctorID(ctx context.Context, doctorID string) (*models.Subscription, error) {
	var subscription models.Subscription
	filter := bson.M{"doctorId": doctorID, "status": constvars.SubscriptionStatusActive}
	opts := options.FindOne().SetSort(bson.D{{Key: "expiresAt", Value: -1}})
	err := r.Collection.FindOne(ctx, filter, opts).Decode(&subscription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &subscription, nil
}

func (r *SubscriptionMongoRepository) UpdateSubscription(ctx context.Context, subscription *models.Subscription) error {
	objectID, err := primitive.ObjectIDFromHex(subscription.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	subscription.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"status":            subscription.Status,
		"checkoutSessionId": subscription.CheckoutSessionID,
		"paymentLink":       subscription.PaymentLink,
		"activatedAt":       subscription.ActivatedAt,
		"expiresAt":         subscription.ExpiresAt,
		"updatedAt":         subscription.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SubscriptionMongoRepository) FindActiveExpiredBefore(ctx context.Context, cutoff time.Time) ([]models.Subscription, error) {
	filter := bson.M{
		"status":    constvars.SubscriptionStatusActive,
		"expiresAt": bson.M{"$lte": cutoff},
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var subscriptionList []models.Subscription
	if err := cursor.All(ctx, &subscriptionList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return subscriptionList, nil
}

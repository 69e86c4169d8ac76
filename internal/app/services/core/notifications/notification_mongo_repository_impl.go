package notifications

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

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func (r *NotificationMongoRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	now := time.Now()
	notification.CreatedAt = now
	notification.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, notification)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *NotificationMongoRepository) FindByUserID(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.Collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var notificationList []models.Notification
	if err := cursor.All(ctx, &notificationList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notificationList, nil
}

// MarkRead scopes by userID so a user cannot touch someone else's notification.
func (r *NotificationMongoRepository) MarkRead(ctx context.Context, notificationID, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID, "userId": userID}
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}}

	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrNotificationNotExist(nil)
	}
	return nil
}

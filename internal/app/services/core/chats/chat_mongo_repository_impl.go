package chats

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

type ChatMongoRepository struct {
	Collection *mongo.Collection
}

func NewChatMongoRepository(db *mongo.Client, dbName string) contracts.ChatRepository {
	return &ChatMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionChats),
	}
}

func (r *ChatMongoRepository) FindByID(ctx context.Context, chatID string) (*models.Chat, error) {
	objectID, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var chat models.Chat
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&chat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &chat, nil
}

func (r *ChatMongoRepository) FindByParticipants(ctx context.Context, patientID, doctorID string) (*models.Chat, error) {
	var chat models.Chat
	filter := bson.M{"patientId": patientID, "doctorId": doctorID}
	err := r.Collection.FindOne(ctx, filter).Decode(&chat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &chat, nil
}

func (r *ChatMongoRepository) FindAllForPatient(ctx context.Context, patientID string) ([]models.Chat, error) {
	return r.findAll(ctx, bson.M{"patientId": patientID})
}

func (r *ChatMongoRepository) FindAllForDoctor(ctx context.Context, doctorID string) ([]models.Chat, error) {
	return r.findAll(ctx, bson.M{"doctorId": doctorID})
}

func (r *ChatMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Chat, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var chatList []models.Chat
	if err := cursor.All(ctx, &chatList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return chatList, nil
}

func (r *ChatMongoRepository) CreateChat(ctx context.Context, chat *models.Chat) (string, error) {
	now := time.Now()
	chat.CreatedAt = now
	chat.UpdatedAt = now
	if chat.Messages == nil {
		chat.Messages = []models.ChatMessage{}
	}
	result, err := r.Collection.InsertOne(ctx, chat)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ChatMongoRepository) AppendMessage(ctx context.Context, chatID string, message models.ChatMessage) error {
	objectID, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$push": bson.M{"messages": message},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// MarkMessagesRead flips the read flag on every message not sent by the
// reader. readerSenderType is the reader's own sender type.
func (r *ChatMongoRepository) MarkMessagesRead(ctx context.Context, chatID, readerSenderType string) error {
	objectID, err := primitive.ObjectIDFromHex(chatID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{"messages.$[elem].read": true, "updatedAt": time.Now()},
	}
	opts := options.Update().SetArrayFilters(options.ArrayFilters{
		Filters: []interface{}{
			bson.M{"elem.senderType": bson.M{"$ne": readerSenderType}, "elem.read": false},
		},
	})
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

package bookings

import (
	"context"
	"medxbay-service/internal/app/contracts"
	"medxbay-service/internal/app/models"
	"medxbay-service/internal/pkg/constvars"
	"medxbay-service/internal/pkg/dto/requests"
	"medxbay-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var booking models.Booking
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindAll(ctx context.Context, params *requests.QueryParams) ([]models.Booking, int, error) {
	filter := bson.M{}
	if params.PatientID != "" {
		filter["patientId"] = params.PatientID
	}
	if params.DoctorID != "" {
		filter["doctorId"] = params.DoctorID
	}
	if params.Status != "" {
		filter["status"] = params.Status
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}, {Key: "startTime", Value: -1}}).
		SetSkip(int64((params.Page - 1) * params.PageSize)).
		SetLimit(int64(params.PageSize))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookingList []models.Booking
	if err := cursor.All(ctx, &bookingList); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookingList, int(total), nil
}

func (r *BookingMongoRepository) UpdateBooking(ctx context.Context, booking *models.Booking) error {
	objectID, err := primitive.ObjectIDFromHex(booking.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	booking.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"status":      booking.Status,
		"meetLink":    booking.MeetLink,
		"acceptedAt":  booking.AcceptedAt,
		"completedAt": booking.CompletedAt,
		"updatedAt":   booking.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// FindAcceptedEndedBefore returns accepted bookings whose date is on or before
// the cutoff day. The caller re-checks the exact end timestamp; the date
// filter just keeps the scan bounded.
func (r *BookingMongoRepository) FindAcceptedEndedBefore(ctx context.Context, cutoff time.Time) ([]models.Booking, error) {
	filter := bson.M{
		"status": constvars.BookingStatusAccepted,
		"date":   bson.M{"$lte": cutoff.Format("2006-01-02")},
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookingList []models.Booking
	if err := cursor.All(ctx, &bookingList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookingList, nil
}

func (r *BookingMongoRepository) CountBookings(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

package doctors

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

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	now := time.Now()
	doctor.CreatedAt = now
	doctor.UpdatedAt = now
	result, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var doctor models.Doctor
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindByUserID(ctx context.Context, userID string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	objectID, err := primitive.ObjectIDFromHex(doctor.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	doctor.UpdatedAt = time.Now()
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{
		"userId":             doctor.UserID,
		"name":               doctor.Name,
		"email":              doctor.Email,
		"gender":             doctor.Gender,
		"title":              doctor.Title,
		"aboutMe":            doctor.AboutMe,
		"specialties":        doctor.Specialties,
		"conditions":         doctor.Conditions,
		"languages":          doctor.Languages,
		"consultationTypes":  doctor.ConsultationTypes,
		"consultationFee":    doctor.ConsultationFee,
		"currency":           doctor.Currency,
		"clinic":             doctor.Clinic,
		"profilePictureKey":  doctor.ProfilePictureKey,
		"verified":           doctor.Verified,
		"subscriptionTier":   doctor.SubscriptionTier,
		"subscriptionExpiry": doctor.SubscriptionExpiry,
		"rating":             doctor.Rating,
		"updatedAt":          doctor.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) Search(ctx context.Context, request *requests.SearchDoctors) ([]models.Doctor, int, error) {
	filter := BuildSearchFilter(request, time.Now())

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	skip := int64((request.Page - 1) * request.PageSize)
	limit := int64(request.PageSize)
	// Ascending tier sort puts "premium" ahead of "standard", then by rating.
	opts := options.Find().
		SetSort(bson.D{{Key: "subscriptionTier", Value: 1}, {Key: "rating", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, int(total), nil
}

func (r *DoctorMongoRepository) FindUnverified(ctx context.Context, page, pageSize int) ([]models.Doctor, int, error) {
	filter := bson.M{"verified": false}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, int(total), nil
}

func (r *DoctorMongoRepository) UpdateTimeSlots(ctx context.Context, doctorID string, slots []models.TimeSlot) error {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"timeSlots": slots,
		"updatedAt": time.Now(),
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMongoRepository) CountDoctors(ctx context.Context, verifiedOnly bool) (int64, error) {
	filter := bson.M{}
	if verifiedOnly {
		filter["verified"] = true
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

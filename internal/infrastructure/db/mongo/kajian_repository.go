package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

const collectionKajian = "kajian"

type KajianRepository struct {
	coll *mongo.Collection
}

func NewKajianRepository(db *mongo.Database) *KajianRepository {
	return &KajianRepository{coll: db.Collection(collectionKajian)}
}

func (r *KajianRepository) Create(ctx context.Context, k *domain.Kajian) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, k); err != nil {
		return fmt.Errorf("insert kajian: %w", err)
	}
	return nil
}

func (r *KajianRepository) FindByID(ctx context.Context, id string) (*domain.Kajian, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var k domain.Kajian
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&k); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrKajianNotFound
		}
		return nil, fmt.Errorf("find kajian: %w", err)
	}
	return &k, nil
}

// List returns the kajian newest date first.
func (r *KajianRepository) List(ctx context.Context) ([]*domain.Kajian, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "tanggal", Value: -1}, {Key: "jam_mulai", Value: -1}}).
		SetLimit(listLimit)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list kajian: %w", err)
	}
	docs := make([]*domain.Kajian, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode kajian: %w", err)
	}
	return docs, nil
}

func (r *KajianRepository) Update(ctx context.Context, k *domain.Kajian) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": k.ID}, bson.M{"$set": bson.M{
		"judul":       k.Judul,
		"tanggal":     k.Tanggal,
		"jam_mulai":   k.JamMulai,
		"jam_selesai": k.JamSelesai,
	}})
	if err != nil {
		return fmt.Errorf("update kajian: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrKajianNotFound
	}
	return nil
}

func (r *KajianRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id, domain.ErrKajianNotFound)
}

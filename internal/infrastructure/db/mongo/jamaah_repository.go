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

const collectionJamaah = "jamaah"

type JamaahRepository struct {
	coll *mongo.Collection
}

func NewJamaahRepository(db *mongo.Database) *JamaahRepository {
	return &JamaahRepository{coll: db.Collection(collectionJamaah)}
}

func (r *JamaahRepository) Create(ctx context.Context, j *domain.Jamaah) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, j); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPhoneTaken
		}
		return fmt.Errorf("insert jamaah: %w", err)
	}
	return nil
}

func (r *JamaahRepository) FindByID(ctx context.Context, id string) (*domain.Jamaah, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *JamaahRepository) FindByPhone(ctx context.Context, phone string) (*domain.Jamaah, error) {
	return r.findOne(ctx, bson.M{"hp": phone})
}

func (r *JamaahRepository) findOne(ctx context.Context, filter bson.M) (*domain.Jamaah, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var j domain.Jamaah
	if err := r.coll.FindOne(ctx, filter).Decode(&j); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJamaahNotFound
		}
		return nil, fmt.Errorf("find jamaah: %w", err)
	}
	return &j, nil
}

func (r *JamaahRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Jamaah, error) {
	out := make(map[string]*domain.Jamaah, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find jamaah by ids: %w", err)
	}
	var docs []*domain.Jamaah
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode jamaah: %w", err)
	}
	for _, j := range docs {
		out[j.ID] = j
	}
	return out, nil
}

func (r *JamaahRepository) List(ctx context.Context) ([]*domain.Jamaah, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("list jamaah: %w", err)
	}
	docs := make([]*domain.Jamaah, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode jamaah: %w", err)
	}
	return docs, nil
}

func (r *JamaahRepository) Update(ctx context.Context, j *domain.Jamaah) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"nama": j.Nama}}
	if j.Phone != nil {
		update["$set"] = bson.M{"nama": j.Nama, "hp": *j.Phone}
	} else {
		update["$unset"] = bson.M{"hp": ""}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": j.ID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrPhoneTaken
		}
		return fmt.Errorf("update jamaah: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrJamaahNotFound
	}
	return nil
}

func (r *JamaahRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.coll, id, domain.ErrJamaahNotFound)
}

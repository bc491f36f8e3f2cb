package repository

import (
	"Minaret/internal/model"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SequenceRepo 整数代理主键分配器。
// 每个集合对应 counters 中的一个计数器文档，NextID 通过单次原子
// $inc 产生下一个 id，并发调用绝不重复（允许产生空洞）。
// 禁止任何 "查最大值再加一" 的读写路径。
type SequenceRepo interface {
	NextID(ctx context.Context, collection string) (int, error)
	Sync(ctx context.Context, collection, idField string, floor int) error
}

type sequenceRepoImpl struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewSequenceRepo(db *mongo.Database) SequenceRepo {
	return &sequenceRepoImpl{
		db:  db,
		col: db.Collection(model.CollCounters),
	}
}

type counterDoc struct {
	ID  string `bson:"_id"`
	Seq int    `bson:"seq"`
}

// NextID 原子递增并返回指定集合的下一个 id
func (s *sequenceRepoImpl) NextID(ctx context.Context, collection string) (int, error) {
	filter := bson.M{"_id": collection}
	update := bson.M{"$inc": bson.M{"seq": 1}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDoc
	if err := s.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return 0, err
	}
	return doc.Seq, nil
}

// Sync 启动时将计数器抬升到目标集合已有 id 的最大值（不低于 floor）。
// 使用 $max 写入，重复执行与并发启动均安全；此后计数器只增不减。
func (s *sequenceRepoImpl) Sync(ctx context.Context, collection, idField string, floor int) error {
	seq := floor

	opts := options.FindOne().
		SetSort(bson.D{{Key: idField, Value: -1}}).
		SetProjection(bson.M{idField: 1})

	var doc bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	if err == nil {
		if current := asInt(doc[idField]); current > seq {
			seq = current
		}
	}

	filter := bson.M{"_id": collection}
	update := bson.M{"$max": bson.M{"seq": seq}}
	_, err = s.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// asInt BSON 数值类型归一化
func asInt(v interface{}) int {
	switch n := v.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}

package corpus

import (
	"context"
	"io"
	"os"

	"github.com/Malowking/selera/core/errors"
	"github.com/Malowking/selera/core/knowledge"
	"github.com/bytedance/sonic"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// 语料来源类型
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceS3      = "s3"
)

// LoadDishes 按配置加载菜品语料。
// corpus.source 支持 builtin（内置数据）、file（本地JSON文件）、s3（对象存储）。
func LoadDishes(ctx context.Context) ([]*knowledge.Dish, error) {
	source := g.Cfg().MustGet(ctx, "corpus.source", SourceBuiltin).String()

	switch source {
	case SourceBuiltin:
		dishes := BuiltinDishes()
		g.Log().Infof(ctx, "Loaded %d dishes from builtin corpus", len(dishes))
		return dishes, nil
	case SourceFile:
		path := g.Cfg().MustGet(ctx, "corpus.path", "").String()
		if path == "" {
			return nil, errors.New(errors.ErrCorpusLoad, "corpus.path is required when corpus.source is 'file'")
		}
		return loadDishesFromFile(ctx, path)
	case SourceS3:
		return loadDishesFromS3(ctx)
	default:
		return nil, errors.Newf(errors.ErrCorpusLoad, "unsupported corpus source: %s. Supported: builtin, file, s3", source)
	}
}

// loadDishesFromFile 从本地JSON文件加载语料
func loadDishesFromFile(ctx context.Context, path string) ([]*knowledge.Dish, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCorpusLoad, err, "failed to read corpus file %s", path)
	}

	dishes, err := decodeDishes(data)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCorpusLoad, err, "failed to parse corpus file %s", path)
	}

	g.Log().Infof(ctx, "Loaded %d dishes from file %s", len(dishes), path)
	return dishes, nil
}

// loadDishesFromS3 从S3兼容对象存储加载语料JSON
func loadDishesFromS3(ctx context.Context) ([]*knowledge.Dish, error) {
	endpoint := g.Cfg().MustGet(ctx, "corpus.s3.endpoint", "").String()
	accessKey := g.Cfg().MustGet(ctx, "corpus.s3.accessKey", "").String()
	secretKey := g.Cfg().MustGet(ctx, "corpus.s3.secretKey", "").String()
	bucket := g.Cfg().MustGet(ctx, "corpus.s3.bucket", "").String()
	object := g.Cfg().MustGet(ctx, "corpus.s3.object", "malaysian_dishes.json").String()
	ssl := g.Cfg().MustGet(ctx, "corpus.s3.ssl", false).Bool()

	if endpoint == "" || bucket == "" {
		return nil, errors.New(errors.ErrCorpusLoad, "corpus.s3.endpoint and corpus.s3.bucket are required when corpus.source is 's3'")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: ssl,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCorpusLoad, err, "failed to create object storage client")
	}

	obj, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCorpusLoad, err, "failed to fetch corpus object %s/%s", bucket, object)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCorpusLoad, err, "failed to read corpus object %s/%s", bucket, object)
	}

	dishes, err := decodeDishes(data)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCorpusLoad, err, "failed to parse corpus object %s/%s", bucket, object)
	}

	g.Log().Infof(ctx, "Loaded %d dishes from s3://%s/%s", len(dishes), bucket, object)
	return dishes, nil
}

// decodeDishes 解析语料JSON并做基本完整性校验
func decodeDishes(data []byte) ([]*knowledge.Dish, error) {
	var dishes []*knowledge.Dish
	if err := sonic.Unmarshal(data, &dishes); err != nil {
		return nil, err
	}

	for i, dish := range dishes {
		if dish == nil || dish.Name == "" {
			return nil, errors.Newf(errors.ErrCorpusLoad, "dish at index %d has no name", i)
		}
	}
	return dishes, nil
}

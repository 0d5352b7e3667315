package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Limite de envio da newsletter por email: 1 por minuto, 10 por hora.
// Sem Redis (testes) o limite fica desativado.
func CanSubscribe(rdb *redis.Client, email string) (bool, string) {
	if rdb == nil {
		return true, ""
	}
	ctx := context.Background()
	minuteKey := fmt.Sprintf("news_minute_%s", email)
	hourKey := fmt.Sprintf("news_hour_%s", email)
	if rdb.Exists(ctx, minuteKey).Val() > 0 {
		return false, "Aguarde 60 segundos antes de tentar novamente"
	}
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	if cnt >= 10 {
		return false, "Limite de 10 tentativas por hora atingido"
	}
	return true, ""
}

func MarkSubscribed(rdb *redis.Client, email string) {
	if rdb == nil {
		return
	}
	ctx := context.Background()
	minuteKey := fmt.Sprintf("news_minute_%s", email)
	hourKey := fmt.Sprintf("news_hour_%s", email)
	rdb.Set(ctx, minuteKey, 1, 60*time.Second)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}

package utils

import (
	"github.com/go-redis/redis/v8"
)

// Cliente global definido no startup; pode ficar nulo nos testes,
// quem usa precisa tolerar a ausência.
var redisClient *redis.Client

func SetRedis(client *redis.Client) {
	redisClient = client
}

func GetRedis() *redis.Client {
	return redisClient
}

// Package common — params.go разбирает числовые параметры HTTP-запросов.
// Валидация выполняется до любого обращения к базе.
package common

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParamID читает положительный числовой параметр пути (:user_id, :game_id, ...).
func ParamID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// QueryID читает положительный числовой query-параметр.
func QueryID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Query(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

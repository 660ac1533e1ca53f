//go:generate goverter gen github.com/DRSN-tech/voice-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/DRSN-tech/voice-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type UserInfoConverter interface {
	ToRedisModel(entity *usecase.UserInfo) *UserInfoRedisModel
	ToUseCase(model *UserInfoRedisModel) *usecase.UserInfo
	ToArrRedisModel(entities []usecase.UserInfo) []UserInfoRedisModel
	ToArrUseCase(models []UserInfoRedisModel) []usecase.UserInfo
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

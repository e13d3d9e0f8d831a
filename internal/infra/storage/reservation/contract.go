package reservation

import (
	"github.com/m04kA/SMC-ReservationsService/pkg/txmanager"
)

// Переиспользуем интерфейс executor из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor

package booking

import "github.com/festive-rides/booking-service/pkg/dbmetrics"

// Переиспользуем интерфейс исполнителя из dbmetrics для работы с БД.
// Поддерживает *sql.DB и *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor

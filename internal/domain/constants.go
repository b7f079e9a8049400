package domain

import "time"

// MaxTeamSessionDuration верхняя граница длительности любой сессии.
// Используется при поиске пересекающихся сессий в расписании зала и
// при валидации каталога команд.
const MaxTeamSessionDuration = 7 * 24 * time.Hour

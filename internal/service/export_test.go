package service

// MaxConflictAttempts открывает maxConflictAttempts для внешнего тестового пакета.
const MaxConflictAttempts = maxConflictAttempts

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yuvraj-revolt-motors/license-tracker/logger"
	"github.com/yuvraj-revolt-motors/license-tracker/models"
	"github.com/yuvraj-revolt-motors/license-tracker/utils"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	usernameKey  contextKey = "username"
)

// RequestIDHeader 요청 추적 헤더
const RequestIDHeader = "X-Request-ID"

// RequestID 컨텍스트에 저장된 요청 ID
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Username 인증된 운영자 이름 (인증 비활성화 시 빈 문자열)
func Username(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}

// responseWriter HTTP 응답을 캡처하기 위한 래퍼
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += n
	return n, err
}

// LoggingMiddleware HTTP 요청/응답 로깅 미들웨어
func LoggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		// 클라이언트가 보낸 요청 ID가 있으면 그대로 사용
		requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		rw.Header().Set(RequestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)

		logger.WithFields(map[string]interface{}{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"query":      r.URL.RawQuery,
			"ip":         getClientIP(r),
			"user_agent": r.UserAgent(),
		}).Debug("HTTP Request")

		next.ServeHTTP(rw, r.WithContext(ctx))

		duration := time.Since(start)

		logger.WithFields(map[string]interface{}{
			"request_id":  requestID,
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": duration.Milliseconds(),
			"size":        rw.written,
		}).Log(getLogLevelForStatus(rw.statusCode), "HTTP Response")
	}
}

// getLogLevelForStatus 상태 코드에 따른 로그 레벨 결정
func getLogLevelForStatus(statusCode int) logger.LogLevel {
	switch {
	case statusCode >= 500:
		return logger.ERROR
	case statusCode >= 400:
		return logger.WARN
	default:
		return logger.INFO
	}
}

// getClientIP 클라이언트 IP 추출
func getClientIP(r *http.Request) string {
	// X-Forwarded-For 헤더 확인 (프록시 환경)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ip, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(ip)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// NewAuthMiddleware JWT 인증 미들웨어 생성. secret이 비어 있으면 인증 없이 통과시킨다.
func NewAuthMiddleware(secret string) func(http.HandlerFunc) http.HandlerFunc {
	key := []byte(secret)

	return func(next http.HandlerFunc) http.HandlerFunc {
		if len(key) == 0 {
			return next
		}

		return func(w http.ResponseWriter, r *http.Request) {
			requestID := RequestID(r.Context())

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WithFields(map[string]interface{}{
					"request_id": requestID,
					"ip":         getClientIP(r),
				}).Warn("Missing authorization header")
				writeUnauthorized(w, "Authorization header required", nil)
				return
			}

			// Bearer 토큰 추출
			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || scheme != "Bearer" || token == "" {
				logger.WithFields(map[string]interface{}{
					"request_id": requestID,
					"ip":         getClientIP(r),
				}).Warn("Invalid authorization header format")
				writeUnauthorized(w, "Invalid authorization header format", nil)
				return
			}

			claims, err := utils.ValidateToken(token, key)
			if err != nil {
				logger.WithFields(map[string]interface{}{
					"request_id": requestID,
					"ip":         getClientIP(r),
					"error":      err.Error(),
				}).Warn("Invalid or expired token")
				writeUnauthorized(w, "Invalid or expired token", err)
				return
			}

			logger.WithFields(map[string]interface{}{
				"request_id": requestID,
				"username":   claims.Username,
			}).Debug("Operator authenticated")

			ctx := context.WithValue(r.Context(), usernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

func writeUnauthorized(w http.ResponseWriter, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(models.ErrorResponse(message, err))
}

// SetJSONHeader JSON 헤더 설정 미들웨어
func SetJSONHeader(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	}
}

// CORSMiddleware CORS 설정 미들웨어
func CORSMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, "+RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, "+RequestIDHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// ChainMiddleware 미들웨어 체인
func ChainMiddleware(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

package services

import (
	"context"
	"crypto/rand"
	"time"
	"vendora_server/database"
	"vendora_server/lib"
	"vendora_server/structs"
	"vendora_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

var DefaultParams = &structs.ArgonParams{
	Memory:  64 * 1024, // 64 MB
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

const otpCodeLength = 6

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
	emailService *EmailService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB, cacheService *CacheService, emailService *EmailService) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
		emailService: emailService,
	}
}

// Login authenticates a user by email and password. Accounts that never
// verified their email cannot log in.
func (as *AuthService) Login(authRequest *structs.AuthRequest) (*tables.User, error) {
	startTime := time.Now()
	user, err := database.Query[tables.User](as.db).Where("email", authRequest.Email).First(context.Background())
	if err != nil {
		mappedErr := lib.MapPgError(err)
		as.logger.Error("Unexpected database error during login",
			gecho.Field("error", mappedErr),
			gecho.Field("original_error", err),
		)
		// Always return invalid credentials (don't leak user existence)
		return nil, lib.ErrInvalidCredentials
	}

	if user == nil {
		as.logger.Debug("User not found during login attempt", gecho.Field("identifier", authRequest.Email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := as.VerifyPassword(authRequest.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt",
			gecho.Field("identifier", authRequest.Email),
			gecho.Field("user_id", user.Id),
		)
		return nil, lib.ErrInvalidCredentials
	}

	if !user.EmailVerified {
		as.logger.Debug("Login attempt on unverified account", gecho.Field("user_id", user.Id))
		return nil, lib.ErrEmailNotVerified
	}

	if _, err := database.UpdateByID[tables.User](as.db, context.Background(), user.Id, map[string]any{
		"last_login": time.Now(),
	}); err != nil {
		as.logger.Warn("Failed to record last login", gecho.Field("error", err), gecho.Field("user_id", user.Id))
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User logged in successfully", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	// Remove password hash before returning user
	user.PasswordHash = ""

	if cacheErr := as.cacheService.SetUserInCache(user); cacheErr != nil {
		as.logger.Warn("Failed to set user in cache after login", gecho.Field("error", cacheErr), gecho.Field("user_id", user.Id))
	}

	return user, nil
}

// Register creates an unverified account and emails a one-time code.
// The account cannot log in until the code is confirmed.
func (as *AuthService) Register(registerRequest *structs.RegisterRequest) (*tables.User, error) {
	startTime := time.Now()
	passwordHash, err := as.HashPassword(registerRequest.Password, DefaultParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	user := &tables.User{
		Username:     registerRequest.Username,
		Email:        registerRequest.Email,
		PasswordHash: passwordHash,
	}
	user, err = database.Query[tables.User](as.db).Insert(context.Background(), user)
	if err != nil {
		mappedErr := lib.MapPgError(err)

		if lib.IsUniqueViolation(mappedErr) {
			as.logger.Warn("Registration failed - duplicate user",
				gecho.Field("username", registerRequest.Username),
				gecho.Field("email", registerRequest.Email),
			)
		} else {
			as.logger.Error("Database error during registration",
				gecho.Field("error", mappedErr),
				gecho.Field("username", registerRequest.Username),
			)
		}

		return nil, mappedErr
	}

	if _, err := as.IssueOTP(user, as.cfg.Auth.OTPExpiry); err != nil {
		// Account exists but code delivery failed; the user can resend
		as.logger.Error("Failed to issue verification code after registration",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
	}

	elapsedTime := time.Since(startTime)
	as.logger.Debug("User registered successfully", gecho.Field("user_id", user.Id), gecho.Field("elapsed_time_ms", elapsedTime.Milliseconds()))

	user.PasswordHash = ""

	return user, nil
}

// IssueOTP generates a fresh code for the user, replacing any pending one,
// and emails it. Each user has at most one live code at a time.
func (as *AuthService) IssueOTP(user *tables.User, expiry time.Duration) (*tables.EmailOTP, error) {
	code, err := lib.GenerateOTPCode(otpCodeLength)
	if err != nil {
		return nil, err
	}

	otp := &tables.EmailOTP{
		UserId:    user.Id,
		Code:      code,
		ExpiresAt: time.Now().Add(expiry),
	}

	otp, err = database.Upsert(as.db, context.Background(), otp, "user_id", "code", "expires_at", "created_at")
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if err := as.emailService.SendOTPEmail(user, code, expiry); err != nil {
		return nil, err
	}

	return otp, nil
}

// VerifyOTP checks a submitted code against the user's pending one and,
// on success, marks the account verified and consumes the code.
func (as *AuthService) VerifyOTP(userID uuid.UUID, code string) (*tables.User, error) {
	ctx := context.Background()

	otp, err := database.Query[tables.EmailOTP](as.db).Where("user_id", userID).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if otp == nil || otp.Expired(time.Now()) {
		return nil, lib.ErrInvalidOTP
	}

	if !lib.SecureCompare([]byte(otp.Code), []byte(code)) {
		as.logger.Debug("OTP mismatch", gecho.Field("user_id", userID))
		return nil, lib.ErrInvalidOTP
	}

	if _, err := database.UpdateByID[tables.User](as.db, ctx, userID, map[string]any{
		"email_verified": true,
	}); err != nil {
		return nil, lib.MapPgError(err)
	}

	if _, err := database.Query[tables.EmailOTP](as.db).Where("user_id", userID).Delete(ctx); err != nil {
		as.logger.Warn("Failed to delete consumed OTP", gecho.Field("error", err), gecho.Field("user_id", userID))
	}

	// Drop any stale cached copy of the unverified user
	if err := as.cacheService.DeleteUserFromCache(userID); err != nil {
		as.logger.Warn("Failed to invalidate user cache", gecho.Field("error", err), gecho.Field("user_id", userID))
	}

	user, err := database.FindByID[tables.User](as.db, ctx, userID)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}

	user.PasswordHash = ""
	as.logger.Info("Email verified", gecho.Field("user_id", userID))

	return user, nil
}

// ResendOTP issues a replacement code with the longer resend expiry.
// Already-verified accounts get nothing, but the caller can't tell:
// the response is identical either way so emails can not be probed.
func (as *AuthService) ResendOTP(email string) error {
	user, err := database.Query[tables.User](as.db).Where("email", email).First(context.Background())
	if err != nil {
		return lib.MapPgError(err)
	}
	if user == nil || user.EmailVerified {
		return nil
	}

	_, err = as.IssueOTP(user, as.cfg.Auth.OTPResendExpiry)
	return err
}

// HashPassword hashes a plain-text password and returns a string and possible error
func (as *AuthService) HashPassword(password string, p *structs.ArgonParams) (string, error) {
	salt, err := generateSalt(p.SaltLen)
	if err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Threads, p.KeyLen)
	return lib.EncodeArgon2Hash(p.Memory, p.Time, p.Threads, salt, hash), nil
}

func generateSalt(n uint32) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	return b, err
}

// VerifyPassword verifies a plain-text password against a hashed password
func (as *AuthService) VerifyPassword(password, hashedPassword string) (bool, error) {
	parts, err := lib.DecodeArgon2Hash(hashedPassword)
	if err != nil {
		return false, err
	}

	hash := argon2.IDKey([]byte(password), parts.Salt, parts.Time, parts.Memory, parts.Threads, parts.KeyLen)

	return lib.SecureCompare(hash, parts.Hash), nil
}

// GenerateAccessToken generates a JWT access token for the given user
func (as *AuthService) GenerateAccessToken(user *tables.User) (string, error) {
	return lib.GenerateToken(user.Id, user.Email, user.Role, as.cfg.Auth.AccessTokenSecret, as.cfg.Auth.AccessTokenExpiry)
}

// GenerateRefreshToken generates a JWT refresh token for the given user
func (as *AuthService) GenerateRefreshToken(user *tables.User) (string, error) {
	return lib.GenerateToken(user.Id, user.Email, user.Role, as.cfg.Auth.RefreshTokenSecret, as.cfg.Auth.RefreshTokenExpiry)
}

// GetAccessTokenExpiration returns the expiration time for access tokens
func (as *AuthService) GetAccessTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.AccessTokenExpiry)
}

// GetRefreshTokenExpiration returns the expiration time for refresh tokens
func (as *AuthService) GetRefreshTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.RefreshTokenExpiry)
}

func (as *AuthService) RefreshAccessToken(refreshToken string) (*tables.AuthResponse, error) {
	claims, err := lib.ParseToken(refreshToken, as.cfg.Auth.RefreshTokenSecret)
	if err != nil {
		as.logger.Error("Failed to parse refresh token", gecho.Field("error", err))
		return nil, lib.ErrInvalidToken
	}

	if time.Now().After(claims.Exp) {
		as.logger.Warn("Refresh token has expired", gecho.Field("exp", claims.Exp))
		return nil, lib.ErrExpiredToken
	}

	isBlacklisted, err := as.cacheService.IsTokenBlacklisted(claims.Jti)
	if err != nil {
		as.logger.Error("Failed to check if token is blacklisted", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
		return nil, err
	}

	if isBlacklisted {
		as.logger.Warn("Refresh token is blacklisted", gecho.Field("jti", claims.Jti))
		return nil, lib.ErrInvalidToken
	}

	user, err := as.GetUserByID(claims.Sub)
	if err != nil {
		as.logger.Error("Failed to get user by ID during token refresh", gecho.Field("error", err), gecho.Field("user_id", claims.Sub))
		return nil, err
	}

	newAccessToken, err := as.GenerateAccessToken(user)
	if err != nil {
		as.logger.Error("Failed to generate new access token during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	newRefreshToken, err := as.GenerateRefreshToken(user)
	if err != nil {
		as.logger.Error("Failed to generate new refresh token during refresh", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return nil, err
	}

	// Rotate: the old refresh token can no longer be replayed
	if err := as.cacheService.BlacklistToken(claims.Jti, claims.Exp); err != nil {
		as.logger.Warn("Failed to blacklist rotated refresh token", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
	}

	return &tables.AuthResponse{
		User:         user,
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout blacklists the current access token so it cannot be reused
func (as *AuthService) Logout(claims *structs.AuthClaims) error {
	if err := as.cacheService.BlacklistToken(claims.Jti, claims.Exp); err != nil {
		as.logger.Error("Failed to blacklist token on logout", gecho.Field("error", err), gecho.Field("jti", claims.Jti))
		return err
	}
	return as.cacheService.DeleteUserFromCache(claims.Sub)
}

func (as *AuthService) GetUserByID(userId uuid.UUID) (*tables.User, error) {
	cachedUser, err := as.cacheService.GetUserFromCache(userId)
	if err != nil {
		as.logger.Warn("Failed to get user from cache", gecho.Field("error", err), gecho.Field("user_id", userId))
	} else if cachedUser != nil {
		as.logger.Debug("User retrieved from cache", gecho.Field("user_id", userId))
		return cachedUser, nil
	}

	// Cache miss - fetch user from database
	user, err := database.Query[tables.User](as.db).Where("id", userId).First(context.Background())
	if err != nil {
		as.logger.Error("Failed to find user by ID", gecho.Field("error", err), gecho.Field("user_id", userId))
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}

	// Cache the user asynchronously
	go func() {
		if err := as.cacheService.SetUserInCache(user); err != nil {
			as.logger.Warn("Failed to cache user after DB fetch", gecho.Field("error", err), gecho.Field("user_id", userId))
		}
	}()

	return user, nil
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

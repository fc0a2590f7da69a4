package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // 60 minutes
			Issuer:     "lapakin-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name  string
		orgID uuid.UUID
		email string
		role  string
	}{
		{
			name:  "Owner token",
			orgID: uuid.New(),
			email: "owner@tokobagus.id",
			role:  "owner",
		},
		{
			name:  "Finance token",
			orgID: uuid.New(),
			email: "finance@tokobagus.id",
			role:  "finance",
		},
		{
			name:  "Empty email still generates",
			orgID: uuid.New(),
			email: "",
			role:  "staff",
		},
		{
			name:  "Empty role still generates",
			orgID: uuid.New(),
			email: "staff@tokobagus.id",
			role:  "",
		},
		{
			name:  "Zero UUID still generates",
			orgID: uuid.UUID{},
			email: "owner@tokobagus.id",
			role:  "owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := getTestConfig()
			tokenString, expiresAt, err := GenerateToken(tt.orgID, tt.email, tt.role, config)

			assert.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				return []byte(config.JWT.Secret), nil
			})
			require.NoError(t, err)
			require.True(t, token.Valid)

			claims, ok := token.Claims.(jwt.MapClaims)
			require.True(t, ok)

			assert.Equal(t, tt.orgID.String(), claims["org_id"])
			assert.Equal(t, tt.email, claims["email"])
			assert.Equal(t, tt.role, claims["role"])
			assert.Equal(t, config.JWT.Issuer, claims["iss"])
			assert.Equal(t, float64(expiresAt), claims["exp"])
		})
	}
}

func TestGenerateToken_ExpirationTime(t *testing.T) {
	config := getTestConfig()
	config.JWT.Expiration = 30 // 30 minutes

	beforeGeneration := time.Now()
	tokenString, expiresAt, err := GenerateToken(uuid.New(), "owner@tokobagus.id", "owner", config)
	afterGeneration := time.Now()

	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	expectedMin := beforeGeneration.Add(30 * time.Minute).Unix()
	expectedMax := afterGeneration.Add(30 * time.Minute).Unix()

	assert.GreaterOrEqual(t, expiresAt, expectedMin)
	assert.LessOrEqual(t, expiresAt, expectedMax)
}

func TestValidateToken(t *testing.T) {
	config := getTestConfig()
	orgID := uuid.New()
	email := "admin@tokobagus.id"
	role := "admin"

	validToken, _, err := GenerateToken(orgID, email, role, config)
	require.NoError(t, err)

	tests := []struct {
		name        string
		tokenString string
		secret      string
		expectError bool
		setupToken  func() string
	}{
		{
			name:        "Valid token",
			tokenString: validToken,
			secret:      config.JWT.Secret,
			expectError: false,
		},
		{
			name:        "Invalid secret",
			tokenString: validToken,
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			tokenString: "invalid.token.string",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name:        "Empty token",
			tokenString: "",
			secret:      config.JWT.Secret,
			expectError: true,
		},
		{
			name: "Expired token",
			setupToken: func() string {
				expiredConfig := *config
				expiredConfig.JWT.Expiration = -1
				token, _, _ := GenerateToken(orgID, email, role, &expiredConfig)
				return token
			},
			secret:      config.JWT.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenToTest := tt.tokenString
			if tt.setupToken != nil {
				tokenToTest = tt.setupToken()
			}

			claims, err := ValidateToken(tokenToTest, tt.secret)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, claims)

				assert.Equal(t, orgID, claims.OrgID)
				assert.Equal(t, email, claims.Email)
				assert.Equal(t, role, claims.Role)
				assert.Equal(t, config.JWT.Issuer, claims.Issuer)
			}
		})
	}
}

func TestValidateToken_ClaimsExtraction(t *testing.T) {
	config := getTestConfig()
	orgID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(orgID, "finance@tokobagus.id", "finance", config)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, config.JWT.Secret)
	require.NoError(t, err)
	require.NotNil(t, claims)

	assert.Equal(t, orgID, claims.OrgID)
	assert.Equal(t, "finance@tokobagus.id", claims.Email)
	assert.Equal(t, "finance", claims.Role)
	assert.Equal(t, expiresAt, claims.ExpiresAt)
}

func TestClaims_Struct(t *testing.T) {
	orgID := uuid.New()

	claims := Claims{
		OrgID: orgID,
		Email: "owner@tokobagus.id",
		Role:  "owner",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			Issuer:    "test-issuer",
		},
	}

	assert.Equal(t, orgID, claims.OrgID)
	assert.Equal(t, "owner@tokobagus.id", claims.Email)
	assert.Equal(t, "owner", claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func BenchmarkGenerateToken(b *testing.B) {
	config := getTestConfig()
	orgID := uuid.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = GenerateToken(orgID, "owner@tokobagus.id", "owner", config)
	}
}

func BenchmarkValidateToken(b *testing.B) {
	config := getTestConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "owner@tokobagus.id", "owner", config)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ValidateToken(tokenString, config.JWT.Secret)
	}
}

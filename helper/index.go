package helper

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"wedding_planner/constants"
	"wedding_planner/database"
	"wedding_planner/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func ValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GetCoupleByUsername(u string) (*model.CoupleAccount, error) {
	db := database.DB
	var couple model.CoupleAccount
	if err := db.Where(&model.CoupleAccount{Username: u}).First(&couple).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &couple, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["coupleId"] = tokenClaim.CoupleId
	claims["role"] = tokenClaim.Role
	if tokenClaim.EventId != nil {
		claims["eventId"] = *tokenClaim.EventId
	}
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["coupleId"] = tokenClaim.CoupleId
	claims["role"] = tokenClaim.Role
	if tokenClaim.EventId != nil {
		claims["eventId"] = *tokenClaim.EventId
	}
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoAccountFromToken loads the employee account behind the request token.
// Returns the claim plus isAdmin, isPlanner.
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false, false
	}
	tokenClaim := token.Claims.(jwt.MapClaims)
	accountIdFloat, ok := tokenClaim["accountId"].(float64)
	if !ok || accountIdFloat == 0 {
		return model.TokenClaim{}, false, false
	}
	accountId := uint(accountIdFloat)
	username, _ := tokenClaim["username"].(string)

	var account model.Account
	db := database.DB
	if err := db.First(&account, accountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Account not found: id=%d", accountId)
		} else {
			log.Printf("Database query error for account: id=%d, error=%v", accountId, err)
		}
		return model.TokenClaim{}, false, false
	}

	accountInfo := model.TokenClaim{
		AccountId: accountId,
		Username:  username,
		Role:      account.Role,
	}

	return accountInfo,
		account.Role == constants.ROLE_ADMIN,
		account.Role == constants.ROLE_PLANNER
}

// GetInfoCoupleFromToken resolves the couple principal and its event grant.
func GetInfoCoupleFromToken(c *fiber.Ctx) (model.TokenClaim, *model.CoupleAccount) {
	u := c.Locals("user")
	if u == nil {
		return model.TokenClaim{}, nil
	}

	token, ok := u.(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil
	}

	role, _ := claims["role"].(string)
	if role != constants.ROLE_COUPLE {
		return model.TokenClaim{}, nil
	}

	coupleIdFloat, ok := claims["coupleId"].(float64)
	if !ok || coupleIdFloat == 0 {
		return model.TokenClaim{}, nil
	}

	var couple model.CoupleAccount
	db := database.DB
	if err := db.First(&couple, uint(coupleIdFloat)).Error; err != nil {
		log.Printf("Couple account not found (id=%d): %v", uint(coupleIdFloat), err)
		return model.TokenClaim{}, nil
	}

	username, _ := claims["username"].(string)
	claim := model.TokenClaim{
		CoupleId: couple.ID,
		EventId:  &couple.EventId,
		Username: username,
		Role:     constants.ROLE_COUPLE,
	}

	return claim, &couple
}

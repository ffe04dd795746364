package mw

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"radiology-workflow-api/keycloak"
	"radiology-workflow-api/utils"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var GIN_CONTEXT_AUTHINFO = "AuthInfo"

const (
	PERM_C = "CREATE"
	PERM_R = "READ"
	PERM_U = "UPDATE"
	PERM_D = "DELETE"
)

var JWT_KEYS *keycloak.JWTKeys

func getJWTKeysFromKeycloak(uri string) (keycloak.JWTKeys, error) {
	utils.LogDebug(uri)
	res, err := http.Get(uri)
	if err != nil {
		return keycloak.JWTKeys{}, err
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return keycloak.JWTKeys{}, err
	}

	jwtKeys := keycloak.JWTKeys{}
	if err := json.Unmarshal(body, &jwtKeys); err != nil {
		return keycloak.JWTKeys{}, err
	}
	return jwtKeys, nil
}

func ParseJWTAccessToken(token string) (*Account, error) {
	if JWT_KEYS == nil {
		keys, err := getJWTKeysFromKeycloak(fmt.Sprintf("%s/auth/realms/%s",
			viper.GetString("keycloak.uri"), viper.GetString("keycloak.app_realm")))
		if err != nil {
			return nil, err
		}
		JWT_KEYS = &keys
		utils.LogDebug(JWT_KEYS.String())
	}

	isValid, err := VerifyTokenWithPubkey(token, JWT_KEYS.PublicKey)
	if err != nil {
		return nil, err
	}
	if !isValid {
		return nil, errors.New("The token is invalid")
	}

	authClaim, err := ParseJWTAccessTokenToObject(token)
	if err != nil {
		return nil, err
	}

	account := authClaim.ConvertAuthClaimToAccount()

	if time.Now().Unix() > authClaim.Exp {
		return nil, errors.New("Token expired")
	}
	if account.Username == "" {
		return nil, errors.New("Token carries no account")
	}
	return account, nil
}

func WrapAuthInfo(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			auth  Account
			_auth []byte
			err   error
		)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}

		splitted := strings.Split(authHeader, " ")
		logger.Debug("Request headers", zap.String("Authorization", authHeader))
		xUserinfoHeader := c.GetHeader("X-USERINFO")

		switch {
		case splitted[0] == "Bearer":
			if len(splitted) == 2 {
				var authp *Account
				authp, err = ParseJWTAccessToken(splitted[1])
				if err != nil {
					c.AbortWithStatus(http.StatusUnauthorized)
					return
				}
				auth = *authp
			} else {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
		case xUserinfoHeader != "":
			_auth, err = base64.StdEncoding.DecodeString(xUserinfoHeader)
			if err == nil {
				err = json.Unmarshal(_auth, &auth)
			}

		default:
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			c.Abort()
			return
		}
		c.Set(GIN_CONTEXT_AUTHINFO, &auth)
		c.Next()
	}
}

func GetAuthInfoFromGin(c *gin.Context) *Account {
	if inf, exists := c.Get(GIN_CONTEXT_AUTHINFO); exists {
		var account Account
		bytes, err := json.Marshal(inf)
		if err != nil {
			return nil
		}
		json.Unmarshal(bytes, &account)
		return &account
	}
	return nil
}

func ValidPerms(rResource, rScope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		splitted := strings.Split(authHeader, " ")
		if len(splitted) != 2 {
			// X-USERINFO callers passed WrapAuthInfo already; no token to
			// read scopes from.
			c.Next()
			return
		}

		p, err := ParseJWTAccessTokenToObject(splitted[1])
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		for _, perm := range p.Authorization.Permissions {
			for _, scope := range perm.Scopes {
				if scope == rScope && perm.Rsname == rResource {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatus(http.StatusForbidden)
	}
}

func ParseJWTAccessTokenToObject(token string) (*AuthClaim, error) {
	_token, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return nil, nil
	})

	parsedJWT := &AuthClaim{}
	if _token != nil {
		if claims, ok := _token.Claims.(jwt.MapClaims); ok {
			bytes, _ := json.Marshal(claims)
			json.Unmarshal(bytes, parsedJWT)
			return parsedJWT, nil
		}
	}
	return nil, err
}

func VerifyTokenWithPubkey(token, keyData string) (bool, error) {
	if !strings.Contains(keyData, "BEGIN PUBLIC KEY") {
		keyData = fmt.Sprintf("-----BEGIN PUBLIC KEY-----\n%s\n-----END PUBLIC KEY-----", keyData)
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(keyData))
	if err != nil {
		return false, err
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return false, nil
	}
	err = jwt.SigningMethodRS256.Verify(strings.Join(parts[0:2], "."), parts[2], key)
	if err != nil {
		return false, nil
	}
	return true, nil
}

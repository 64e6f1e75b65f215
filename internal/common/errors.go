// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях сервиса.
// Эти ошибки позволяют обработчикам различать типы проблем
// и возвращать клиенту корректный HTTP-статус и понятное сообщение.
package common

import "errors"

// Ошибки пользователей и кошелька
var (
	// ErrUserNotFound — пользователь не найден в базе
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken — email уже зарегистрирован
	ErrEmailTaken = errors.New("email is already registered")
	// ErrUsernameTaken — имя пользователя уже занято
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrBadCredentials — неверная пара логин/пароль
	ErrBadCredentials = errors.New("invalid credentials")
	// ErrInvalidAmount — некорректная сумма (ноль или отрицательная)
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds — недостаточно средств в кошельке
	ErrInsufficientFunds = errors.New("insufficient funds in wallet")
)

// Ошибки магазина и корзины
var (
	// ErrGameNotFound — игра не найдена
	ErrGameNotFound = errors.New("game not found")
	// ErrAlreadyOwned — игра уже есть в библиотеке пользователя
	ErrAlreadyOwned = errors.New("game already exists in your library")
	// ErrAlreadyInBasket — игра уже лежит в корзине
	ErrAlreadyInBasket = errors.New("game already in basket")
	// ErrBasketItemNotFound — позиция корзины не найдена или чужая
	ErrBasketItemNotFound = errors.New("item not found in basket")
)

// Ошибки скидочных кодов
var (
	// ErrCodeInvalid — код не существует или бюджет погашений исчерпан
	ErrCodeInvalid = errors.New("invalid or expired discount code")
	// ErrCodeAlreadyUsed — аккаунт уже погашал этот код
	ErrCodeAlreadyUsed = errors.New("discount code already used by this account")
	// ErrDuplicateCode — код с таким именем уже существует
	ErrDuplicateCode = errors.New("discount code name already exists")
	// ErrCodeNotFound — код не найден (удаление/просмотр)
	ErrCodeNotFound = errors.New("discount code not found")
)

// Ошибки лотереи
var (
	// ErrLottoNotFound — билет с таким номером не существует
	ErrLottoNotFound = errors.New("lotto number not found")
	// ErrLottoAlreadySold — билет уже продан другому покупателю
	ErrLottoAlreadySold = errors.New("lotto already sold")
	// ErrLottoNotOnSale — билет ещё не выпущен в продажу (staged)
	ErrLottoNotOnSale = errors.New("lotto is not on sale")
	// ErrNoStagedLottos — нет подготовленных билетов для запуска
	ErrNoStagedLottos = errors.New("no staged lottos")
	// ErrNoLottosAvailable — пул кандидатов розыгрыша пуст
	ErrNoLottosAvailable = errors.New("no lottos available for draw")
)

// Ошибки призов
var (
	// ErrNotWinning — билет не несёт призового разряда
	ErrNotWinning = errors.New("this ticket is not a winning ticket")
	// ErrNotOwner — билет принадлежит другому аккаунту
	ErrNotOwner = errors.New("you do not own this lottery ticket")
	// ErrAlreadyClaimed — приз по билету уже выплачен
	ErrAlreadyClaimed = errors.New("this prize has already been claimed")
	// ErrPrizeTierInvalid — разряд вне диапазона или не разыгрывается напрямую
	ErrPrizeTierInvalid = errors.New("invalid prize tier")
)

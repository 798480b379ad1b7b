package entities

// Ключи почтовых джоб в очереди уведомлений.
// Consumer (worker-mail-dispatch) диспатчит по этому ключу.
type NotificationJobKey string

const (
	JobCreationMail     NotificationJobKey = "CreationMail"
	JobCancellationMail NotificationJobKey = "CancellationMail"
)

func (k NotificationJobKey) String() string {
	return string(k)
}

// CreationMailJob — payload письма курьеру о новой доставке.
type CreationMailJob struct {
	Deliveryman Deliveryman
	Recipient   Recipient
	Product     string
}

// CancellationMailJob — payload письма курьеру об отмене доставки.
type CancellationMailJob struct {
	Delivery DeliveryInfo
	Problem  DeliveryProblem
}

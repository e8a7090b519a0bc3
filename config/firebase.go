package config

// FirebaseServiceAccountKeyPath points at the service account JSON used for FCM.
var FirebaseServiceAccountKeyPath = "serviceAccountKey.json"
